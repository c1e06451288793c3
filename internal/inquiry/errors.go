package inquiry

import "errors"

// Domain errors
var (
	// ErrNotFound - inquiry does not exist
	ErrNotFound = errors.New("inquiry: not found")

	// ErrChatClosed - chat operation on a closed conversation
	ErrChatClosed = errors.New("inquiry: conversation is closed")

	// ErrInfluencerRequired - influencer id missing on submit
	ErrInfluencerRequired = errors.New("inquiry: influencer id is required")

	// ErrInfluencerNotFound - submit targets an unknown influencer
	ErrInfluencerNotFound = errors.New("inquiry: influencer not found")

	// ErrBusinessEmailRequired - business email missing on submit
	ErrBusinessEmailRequired = errors.New("inquiry: business email is required")

	// ErrMessageRequired - message content missing
	ErrMessageRequired = errors.New("inquiry: message content is required")

	// ErrMessageTooLong - message content over the limit
	ErrMessageTooLong = errors.New("inquiry: message too long")

	// ErrInvalidPrice - offered budget must be positive when present
	ErrInvalidPrice = errors.New("inquiry: price must be greater than 0")

	// ErrInvalidStatus - status outside the allowed enum
	ErrInvalidStatus = errors.New("inquiry: invalid status")

	// ErrNotOwner - caller is not the inquiry's influencer
	ErrNotOwner = errors.New("inquiry: not the owner")

	// ErrAttachmentRequired - upload without a file
	ErrAttachmentRequired = errors.New("inquiry: attachment file is required")

	// ErrAttachmentTooLarge - upload over MaxAttachmentSize
	ErrAttachmentTooLarge = errors.New("inquiry: attachment too large")
)
