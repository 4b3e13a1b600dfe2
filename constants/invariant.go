package constants

import "time"

const (
	APP_NAME         = "Portfolio"
	DEFAULT_PORT     = 6835
	WORDS_PER_MINUTE = 200

	FEATURED_PROJECTS_TO_SHOW = 6
	FEATURED_POSTS_TO_SHOW    = 3
	RELATED_POSTS_TO_SHOW     = 3
	RECENT_ACTIVITY_TO_SHOW   = 4

	// uploads
	MAX_UPLOAD_SIZE     = 10 << 20
	UPLOADS_URL_PREFIX  = "/files"
	MAX_IMPORT_FILE_LEN = 1 << 20

	EXPIRING_SOON_MONTHS = 3

	SESSION_COOKIE_NAME = "portfolio_session"
	FLASH_COOKIE_NAME   = "portfolio_flash"
	DEFAULT_SESSION_TTL = 7 * 24 * time.Hour
	API_TOKEN_TTL       = 24 * time.Hour

	GISTS_DEFAULT_USER = "RamyBouchareb25"
	GISTS_USER_AGENT   = "Portfolio-Website"
)

var SKILL_CATEGORIES = []string{
	"Frontend",
	"Backend",
	"Database",
	"DevOps",
	"Mobile",
	"Tools",
	"Languages",
	"Frameworks",
	"Cloud",
	"Other",
}
