package usecasecontract

import "time"

type IConfigProvider interface {
	GetAppBaseURL() string
	GetPostsPerPage() int
	GetCommentsPerPage() int
	GetMaxUploadBytes() int64
	GetPostListCacheTTL() time.Duration
	GetUseTransactions() bool
}
