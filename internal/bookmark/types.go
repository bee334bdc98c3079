package bookmark

// Keys the relay inspects or adds on the extractor's intake result.
const (
	KeyStatus     = "status"
	KeyFilePath   = "file_path"
	KeySynced     = "synced_to_jibrain"
	KeySyncError  = "sync_error"
	StatusCreated = "created"
)

// Config locates the extractor inside the sandbox and the local intake directory.
type Config struct {
	ExtractorURL string
	VaultRoot    string
	MetaDir      string
	IntakeDir    string
}

// IntakeInput is the raw request body, forwarded untouched.
type IntakeInput struct {
	Body []byte
}

// IntakeOutput is the extractor's result, plus sync fields when a pull-back ran.
type IntakeOutput struct {
	Result map[string]any
}
