package i18n

// Key identifies a UI string.
type Key string

const (
	KeyAppName          Key = "app_name"
	KeyLogin            Key = "login"
	KeyLogout           Key = "logout"
	KeyRegister         Key = "register"
	KeyUsername         Key = "username"
	KeyPassword         Key = "password"
	KeyConfirmPassword  Key = "confirm_password"
	KeyFullName         Key = "full_name"
	KeySchool           Key = "school"
	KeySubject          Key = "subject"
	KeyCategory         Key = "category"
	KeyExperience       Key = "experience"
	KeyCabinet          Key = "cabinet"
	KeyModeration       Key = "moderation"
	KeyUsers            Key = "users"
	KeyAddAchievement   Key = "add_achievement"
	KeyTitle            Key = "title"
	KeyDescription      Key = "description"
	KeyType             Key = "type"
	KeyStudentName      Key = "student_name"
	KeyLevel            Key = "level"
	KeyPlace            Key = "place"
	KeyFile             Key = "file"
	KeyPoints           Key = "points"
	KeyTotalPoints      Key = "total_points"
	KeyStatus           Key = "status"
	KeySubmit           Key = "submit"
	KeyApprove          Key = "approve"
	KeyReject           Key = "reject"
	KeyDelete           Key = "delete"
	KeyDownload         Key = "download"
	KeyCreateUser       Key = "create_user"
	KeyIsAdmin          Key = "is_admin"
	KeyNoAchievements   Key = "no_achievements"
	KeyOwner            Key = "owner"
	KeyCreatedAt        Key = "created_at"
	KeyErrorTitle       Key = "error_title"
	KeyBack             Key = "back"
	KeyAchievementAdded Key = "achievement_added"
	KeyUserCreated      Key = "user_created"
	KeyUserDeleted      Key = "user_deleted"

	// enumerations
	KeyTypeStudent          Key = "type.student"
	KeyTypeTeacher          Key = "type.teacher"
	KeyTypeSocial           Key = "type.social"
	KeyTypeEducational      Key = "type.educational"
	KeyLevelCity            Key = "level.city"
	KeyLevelRegional        Key = "level.regional"
	KeyLevelNational        Key = "level.national"
	KeyLevelInternational   Key = "level.international"
	KeyPlace1               Key = "place.1"
	KeyPlace2               Key = "place.2"
	KeyPlace3               Key = "place.3"
	KeyPlaceCertificate     Key = "place.certificate"
	KeyStatusPending        Key = "status.pending"
	KeyStatusApproved       Key = "status.approved"
	KeyStatusRejected       Key = "status.rejected"
	KeyStatusAll            Key = "status.all"

	// error indicators carried in ?error=
	KeyErrInvalidCredentials Key = "error.invalid_credentials"
	KeyErrUsernameTaken      Key = "error.username_taken"
	KeyErrPasswordMismatch   Key = "error.password_mismatch"
	KeyErrPasswordTooShort   Key = "error.password_too_short"
	KeyErrInvalidInput       Key = "error.invalid_input"
	KeyErrUnsupportedFile    Key = "error.unsupported_file_type"
	KeyErrFileTooLarge       Key = "error.file_too_large"
	KeyErrEmptyFile          Key = "error.empty_file"
	KeyErrUnauthorized       Key = "error.unauthorized"
	KeyErrForbidden          Key = "error.forbidden"
	KeyErrNotFound           Key = "error.not_found"
	KeyErrNoAttachment       Key = "error.no_attachment"
	KeyErrFileMissing        Key = "error.file_missing"
	KeyErrInternal           Key = "error.internal"
	KeyErrRegistrationClosed Key = "error.registration_closed"
	KeyErrUsernameRequired   Key = "error.username_required"
	KeyErrCannotDeleteSelf   Key = "error.cannot_delete_self"
)

// ErrorKey maps an error indicator code to its message key.
func ErrorKey(code string) Key {
	return Key("error." + code)
}
