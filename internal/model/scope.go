package model

// Scope carries the caller identity resolved at the delivery layer.
type Scope struct {
	UserID   string
	Timezone string // IANA name; empty means "use the stored user timezone"
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)
