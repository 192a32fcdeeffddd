package constants

// NATS Subjects
const (
	// SubjectDriverUpdated carries models.DriverEvent after any driver mutation that affects matching
	SubjectDriverUpdated = "driver.updated"
)
