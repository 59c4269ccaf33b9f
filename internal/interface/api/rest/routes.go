package rest

const (
	RouteUsers      = "/users"
	RouteUserSearch = RouteUsers + "/search"
	RouteUser       = RouteUsers + "/:user_id"
	RouteUserPart   = RouteUsers + "/part/:user_id"
	RouteUserFull   = RouteUsers + "/full/:user_id"
	RouteUserDelete = RouteUsers + "/delete/:user_id"

	// ops
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)
