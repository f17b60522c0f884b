package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDynamoTableName = "erp_state"

type dynamoItem struct {
	Key   string `dynamodbav:"key"`
	Value string `dynamodbav:"value"`
}

// DynamoChannel persists keys as items in a DynamoDB table.
//
// Table requirements:
//   - PK: key (string)
type DynamoChannel struct {
	ddb       *dynamodb.Client
	tableName string
}

func NewDynamoChannel(ddb *dynamodb.Client) *DynamoChannel {
	return &DynamoChannel{
		ddb:       ddb,
		tableName: getenvDefault("DYNAMODB_TABLE", defaultDynamoTableName),
	}
}

// ConnectDynamoChannel creates a DynamoDB-backed channel using
// environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - DYNAMODB_TABLE (default: erp_state)
func ConnectDynamoChannel(ctx context.Context) (*DynamoChannel, error) {
	cfg, err := newDynamoConfigFromEnv(ctx)
	if err != nil {
		return nil, fmt.Errorf("dynamodb config: %w", err)
	}
	return NewDynamoChannel(dynamodb.NewFromConfig(cfg)), nil
}

func newDynamoConfigFromEnv(ctx context.Context) (aws.Config, error) {
	region := getenvDefault("AWS_REGION", "us-east-1")
	endpoint := os.Getenv("DYNAMODB_ENDPOINT")

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	}

	if endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func (d *DynamoChannel) Get(ctx context.Context, key string) (string, error) {
	out, err := d.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("dynamodb get: %w", err)
	}
	if len(out.Item) == 0 {
		return "", ErrKeyNotFound
	}

	var it dynamoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", fmt.Errorf("dynamodb unmarshal: %w", err)
	}
	return it.Value, nil
}

func (d *DynamoChannel) Set(ctx context.Context, key, value string) error {
	av, err := attributevalue.MarshalMap(dynamoItem{Key: key, Value: value})
	if err != nil {
		return fmt.Errorf("dynamodb marshal: %w", err)
	}

	_, err = d.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("dynamodb put: %w", err)
	}
	return nil
}

func (d *DynamoChannel) Delete(ctx context.Context, key string) error {
	_, err := d.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return fmt.Errorf("dynamodb delete: %w", err)
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
