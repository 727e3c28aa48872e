package accessor

// DefaultTagName is the struct tag consulted by Struct when none is given,
// so paths use the same names as the JSON serializer.
const DefaultTagName = "json"

// Error codes and messages
const (
	ErrCodeAccessor       = "LOGMSG_ACCESSOR"
	ErrMsgDecoderCreate   = "failed to create struct decoder"
	ErrMsgStructDecode    = "failed to decode struct to map"
	ErrMsgNotStruct       = "value is not a struct"
	MetaKeyType           = "type"
	StructTypeUnavailable = "<nil>"
)
