package apierrors

const (
	MsgRequestFailed      = "requestFailed"
	MsgInvalidCredentials = "invalidCredentials"
	MsgNotLoggedIn        = "notLoggedIn"

	MsgInvalidUserQuery   = "invalidUserQuery"
	MsgInvalidUserPayload = "invalidUserPayload"
	MsgUserNotFound       = "userNotFound"
	MsgFailCreateUser     = "failCreateUser"
	MsgFailListUsers      = "failListUsers"
	MsgFailFindUser       = "failFindUser"

	MsgInvalidProjectQuery   = "invalidProjectQuery"
	MsgInvalidProjectPayload = "invalidProjectPayload"
	MsgProjectNotFound       = "projectNotFound"
	MsgFailListProjects      = "failListProjects"
	MsgFailFindProject       = "failFindProject"
	MsgFailCreateProject     = "failCreateProject"
	MsgFailUpdateProject     = "failUpdateProject"
	MsgFailDeleteProject     = "failDeleteProject"

	MsgInvalidTaskQuery   = "invalidTaskQuery"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailListTasks      = "failListTasks"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
)
