package proxyip

const (
	eventRejectedValue = "rejected_value"
	eventNotFound      = "not_found"
)
