package reservations

const TopicActivity = "reservation.activity"

// Partition key = reservation id, so events for one reservation stay ordered.
func PartitionKey(id ID) []byte { return []byte(id) }
