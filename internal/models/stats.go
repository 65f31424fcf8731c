package models

// Aggregation read models for the dashboard. Statuses and priorities with
// zero tasks are absent from their result sets; members with zero tasks
// appear with a zero count because that aggregate originates from the
// member side of the join.

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type PriorityCount struct {
	Priority string `json:"priority"`
	Count    int64  `json:"count"`
}

type MemberTaskCount struct {
	Name      string `json:"name"`
	TaskCount int64  `json:"task_count"`
}
