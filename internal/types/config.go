package types

type RunMode string

const (
	// ModeLocal runs the API server with sample data seeded
	ModeLocal RunMode = "local"
	// ModeAPI runs just the API server
	ModeAPI RunMode = "api"
	// ModeAWSLambdaAPI serves the API from AWS Lambda behind API Gateway
	ModeAWSLambdaAPI RunMode = "aws_lambda_api"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
)
