package constants

const DEFAULT_HOST = "0.0.0.0"
const DEFAULT_PORT = 8080
const DEFAULT_IPINFO_URL = "https://ipinfo.io/json"

const INDEX_MESSAGE = "Hello from Rust on Cloudflare!"
const SERVICE_NAME = "rust-container"
const API_NAME = "Rust Container API"
const API_VERSION = "1.0.0"

const FETCH_FAILED_MESSAGE = "Failed to fetch IP info"
const READ_FAILED_MESSAGE = "Failed to read response"

const METRICS_NAMESPACE = "container_api"

const (
	UPSTREAM_RESULT_OK          = "ok"
	UPSTREAM_RESULT_FETCH_ERROR = "fetch_error"
	UPSTREAM_RESULT_READ_ERROR  = "read_error"
)
