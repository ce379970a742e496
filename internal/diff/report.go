package diff

// Level classifies a diagnostic.
type Level string

const (
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Diagnostic codes. Every per-element failure the engine can produce maps to
// exactly one code, so callers can route on them.
const (
	CodeMasterKeyBlank           = "master_key_blank"
	CodeMasterSkuBlank           = "master_sku_blank"
	CodeAttributeMetadataMissing = "attribute_metadata_missing"
	CodeNullElement              = "null_element"
	CodeCustomTypeAmbiguous      = "custom_type_ambiguous"
	CodeImageInvariant           = "image_invariant"
	CodeAssetKeyDuplicated       = "asset_key_duplicated"
	CodePriceValueMissing        = "price_value_missing"
	CodeInternal                 = "internal"
)

// Diagnostic describes one problem found while building update commands.
// Path locates the item/variant/attribute/asset in question, in the same
// dotted form the draft validator uses.
type Diagnostic struct {
	Level   Level  `json:"level"`
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func errorDiag(path, code, msg string, cause error) Diagnostic {
	return Diagnostic{Level: LevelError, Path: path, Code: code, Message: msg, Cause: cause}
}

func warningDiag(path, code, msg string) Diagnostic {
	return Diagnostic{Level: LevelWarning, Path: path, Code: code, Message: msg}
}
