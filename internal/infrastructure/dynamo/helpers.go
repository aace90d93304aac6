package dynamo

import (
	"crypto/rand"
	"sort"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chatwith-notifications/internal/domain"
	"github.com/oklog/ulid/v2"
)

// newID mints a ULID. ULIDs are lexicographically sortable by creation time
// and safe for use as DynamoDB partition keys.
func newID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// strKey builds a DynamoDB primary key map with a single string attribute.
func strKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		name: &types.AttributeValueMemberS{Value: value},
	}
}

// sortByCreatedAtDesc orders notifications newest first. Ties fall back to
// id so the ordering is stable across scans.
func sortByCreatedAtDesc(ns []domain.Notification) {
	sort.SliceStable(ns, func(i, j int) bool {
		if ns[i].CreatedAt.Equal(ns[j].CreatedAt) {
			return ns[i].NotificationID > ns[j].NotificationID
		}
		return ns[i].CreatedAt.After(ns[j].CreatedAt)
	})
}

// pageWindow slices [offset, offset+limit) out of ns, clamping both ends.
// Out-of-range offsets and non-positive limits yield an empty page.
func pageWindow(ns []domain.Notification, offset, limit int) []domain.Notification {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || offset >= len(ns) {
		return []domain.Notification{}
	}
	end := offset + limit
	if end > len(ns) {
		end = len(ns)
	}
	return ns[offset:end]
}
