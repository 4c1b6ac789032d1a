package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateOrderNumber 產生訂單編號，格式 ORD-<UTC時間戳>-<8碼隨機後綴>
// 時間戳可排序，後綴讓同一秒內的訂單幾乎不可能相撞
// 最終唯一性仍由 orders.order_number 的唯一索引把關
func GenerateOrderNumber() string {
	suffix := strings.ToUpper(uuid.New().String()[:8])
	return fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102150405"), suffix)
}
