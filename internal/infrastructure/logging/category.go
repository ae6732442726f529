package logging

type Category string
type SubCategory string
type ExtraKey string

const (
	General         Category = "General"
	Internal        Category = "Internal"
	IO              Category = "IO"
	Validation      Category = "Validation"
	RequestResponse Category = "RequestResponse"
	Prometheus      Category = "Prometheus"
	Tracing         Category = "Tracing"
)

const (
	// General
	Startup  SubCategory = "Startup"
	Shutdown SubCategory = "Shutdown"

	// RequestResponse
	API        SubCategory = "API"
	Recover    SubCategory = "Recover"
	StaticFile SubCategory = "StaticFile"
	BodyParse  SubCategory = "BodyParse"
)

const (
	AppName      ExtraKey = "AppName"
	LoggerName   ExtraKey = "Logger"
	Environment  ExtraKey = "Environment"
	ClientIp     ExtraKey = "ClientIp"
	HostIp       ExtraKey = "HostIp"
	RequestId    ExtraKey = "RequestId"
	Method       ExtraKey = "Method"
	StatusCode   ExtraKey = "StatusCode"
	BodySize     ExtraKey = "BodySize"
	Path         ExtraKey = "Path"
	Query        ExtraKey = "Query"
	UserAgent    ExtraKey = "UserAgent"
	Latency      ExtraKey = "Latency"
	Address      ExtraKey = "Address"
	ErrorMessage ExtraKey = "ErrorMessage"
	StackTrace   ExtraKey = "StackTrace"
)
