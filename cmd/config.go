package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost          string
	KafkaConsumerGroup string

	KafkaValidateOrderTopic    string
	KafkaAllocateOrderTopic    string
	KafkaDeallocateOrderTopic  string
	KafkaValidationFailedTopic string
	KafkaAllocationFailedTopic string

	KafkaValidationResultTopic string
	KafkaAllocationResultTopic string

	RedisAddr       string
	BeerServiceHost string

	OtlpEndpoint string
	ServiceName  string
}
