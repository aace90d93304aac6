package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chatwith-notifications/internal/config"
)

// NewClient builds the DynamoDB client for the notifications table.
// Credentials come from the default provider chain unless static keys are
// configured; a non-empty AWSEndpointURL (LocalStack) redirects all traffic
// to that endpoint.
func NewClient(cfg *config.Config) *dynamodb.Client {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), loadOpts...)
	if err != nil {
		panic("failed to load AWS config: " + err.Error())
	}

	if cfg.AWSEndpointURL == "" {
		return dynamodb.NewFromConfig(awsCfg)
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		o.BaseEndpoint = aws.String(cfg.AWSEndpointURL)
	})
}
