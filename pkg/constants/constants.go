package constants

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"
	EnvPrefix    = "ENQUIRY"

	EnvProduction  = "production"
	EnvDevelopment = "development"

	DriverMongo    = "mongodb"
	DriverPostgres = "postgres"

	EnquiryCollection = "enquiries"
	EnquirySubject    = "enquiry.created"
)
