package domain

// ActivityType identifies a bookable category of facility or service.
type ActivityType string

const (
	ActivitySwimmingPrivate ActivityType = "SWIMMING_PRIVATE"
	ActivitySwimmingFree    ActivityType = "SWIMMING_FREE"
	ActivitySwimmingSchool  ActivityType = "SWIMMING_SCHOOL"
	ActivityFieldFootball   ActivityType = "FIELD_FOOTBALL"
	ActivityFieldTennis     ActivityType = "FIELD_TENNIS"
)

// UnitType is the billing unit a pricing rule applies per.
type UnitType string

const (
	UnitHour    UnitType = "HOUR"
	UnitSession UnitType = "SESSION"
	UnitDay     UnitType = "DAY"
)
