package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Configuration errors
	FeedSetReadError
	FeedSetValidationError

	// Feed errors
	FeedFetchError
	FeedHTTPStatusError

	// Database errors
	DBOpenError
	DBCloseError
	DBNotOpenError
	DBCreateTableError
	DBCreateIndexError
	DBPrepareError

	// Import errors
	ImportCatalogFetchError
	ImportMetadataFetchError
	ImportBeginError
	ImportInsertError
	ImportCommitError

	// Search errors
	SearchQueryError
	SearchSwapError
)
