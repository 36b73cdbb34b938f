package constant

type ActivityType string

const (
	ActivityTypeTransportation ActivityType = "TRANSPORTATION"
	ActivityTypeEnergy         ActivityType = "ENERGY"
	ActivityTypeFood           ActivityType = "FOOD"
	ActivityTypeWaste          ActivityType = "WASTE"
	ActivityTypeWater          ActivityType = "WATER"
	ActivityTypeOther          ActivityType = "OTHER"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationRejected VerificationStatus = "REJECTED"
)
