package errutil

var (
	ErrValidation       = NewInternalError("validation error")
	ErrRocDateParse     = NewInternalError("roc date parse error")
	ErrDatabaseOpen     = NewInternalError("database open error")
	ErrDatabaseQuery    = NewInternalError("database query error")
	ErrDatabaseNotFound = NewInternalError("database record not found")
	ErrBackendRequest   = NewInternalError("backend request error")
	ErrBackendNotOK     = NewInternalError("backend status code not ok")
	ErrBackendConflict  = NewInternalError("backend unique constraint conflict")
	ErrJSONDecode       = NewInternalError("json decode error")
	ErrJSONEncode       = NewInternalError("json encode error")
	ErrCache            = NewInternalError("cache error")
	ErrReceiptPrint     = NewInternalError("receipt print error")
	ErrSeedFile         = NewInternalError("seed file error")
	ErrScheduler        = NewInternalError("scheduler error")
	ErrConfig           = NewInternalError("config error")
	// 分類できない系
	ErrInternal = NewInternalError("internal something error")
)
