package errors

var (
	// Domain errors used in usecase/repository
	ErrUserNotFound         = NotFound("user not found")
	ErrConversationNotFound = NotFound("conversation not found")
	ErrMessageNotFound      = NotFound("message not found")
	ErrMissingIdentity      = Unauthorized("no authenticated identity present")
	ErrNotParticipant       = Forbidden("user is not a participant of this conversation")
	ErrInvalidLanguage      = InvalidArg("language must be English or French")
	ErrEmptyMessage         = InvalidArg("message text cannot be empty")
	ErrInvalidUsername      = InvalidArg("username cannot be empty")
)

func ErrConversationCreateFailed(cause error) error {
	return Wrap(CodeInternal, "failed to create conversation", cause)
}

func ErrUserUpsertFailed(cause error) error {
	return Wrap(CodeInternal, "failed to store user", cause)
}
