package constants

// Redis key formats
const (
	KeyFanoutLock     = "trip:fanout:lock:%s"     // Format: trip:fanout:lock:{trip_id}
	KeyRequeueAttempt = "trip:requeue:attempt:%s" // Format: trip:requeue:attempt:{trip_id}
)
