package repository

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const itemTimeLayout = time.RFC3339Nano

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// TableNames lists every table the repositories read and write, after env
// overrides. Used by tooling that provisions local tables.
func TableNames() []string {
	return []string{
		getenvDefault("EQUIPMENT_TABLE", defaultEquipmentTableName),
		getenvDefault("TEAMS_TABLE", defaultTeamsTableName),
		getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
		getenvDefault("WORK_CENTERS_TABLE", defaultWorkCentersTableName),
	}
}

func formatItemTime(t time.Time) string {
	return t.UTC().Format(itemTimeLayout)
}

func parseItemTime(s string) time.Time {
	t, err := time.Parse(itemTimeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// scanAll drains a full table scan, following pagination.
func scanAll(ctx context.Context, ddb *dynamodb.Client, tableName string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		out, err := ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}
