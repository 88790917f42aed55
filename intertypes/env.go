package intertypes

type Env struct {
	HOST                 string
	PORT                 int
	CORS_ALLOWED_ORIGINS []string
	IPINFO_URL           string

	DISABLE_REQUEST_LOGS bool
	IS_TEST              bool
	IS_DEV               bool
}
