package domain

// Master Password algorithm constants.
//
// Every value below is part of the cross-implementation contract: changing any of them
// changes every password ever derived, so a change requires a new AlgorithmVersion.
const (
	// AlgorithmVersion identifies the revision of the derivation scheme implemented here.
	AlgorithmVersion = 3

	// KeyScope is the domain-separation prefix of both the scrypt salt and the HMAC message.
	KeyScope = "com.lyndir.masterpassword"

	// ScryptN is the scrypt CPU/memory cost parameter (2^15).
	ScryptN = 32768
	// ScryptR is the scrypt block size parameter.
	ScryptR = 8
	// ScryptP is the scrypt parallelization parameter.
	ScryptP = 2

	// MasterKeySize is the length in bytes of a derived master key.
	MasterKeySize = 64
	// TemplateSeedSize is the length in bytes of a site seed (HMAC-SHA256 digest).
	TemplateSeedSize = 32

	// MaxTemplateLength is the longest template a seed can render. Byte 0 of the seed
	// selects the template, bytes 1..len(template) pick the characters.
	MaxTemplateLength = TemplateSeedSize - 1

	// DefaultCounter is the site counter used when the caller does not specify one.
	DefaultCounter uint32 = 1
)
