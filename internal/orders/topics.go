package orders

const (
	TopicOrderPlaced        = "storefront.order.placed"
	TopicOrderStatusChanged = "storefront.order.status"
	TopicOrderDeleted       = "storefront.order.deleted"
)

// Partition key = order_id, supaya semua event 1 order maintain urutan.
func PartitionKey(orderID string) []byte { return []byte(orderID) }
