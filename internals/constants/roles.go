package constants

import "fmt"

const (
	RoleAdmin   = "ADMIN"
	RoleTutor   = "TUTOR"
	RoleStudent = "STUDENT"
)

// Member types stored in member.member_type. A member's JWT role equals its type.
const (
	MemberTypeStudent = RoleStudent
	MemberTypeTutor   = RoleTutor
)

const (
	ErrOnlyAdminsCanAccess  = "only admins can access %s"
	ErrOnlyTutorsCanAccess  = "only tutors or admins can access %s"
	ErrOnlyStudentCanAccess = "only students can access %s"
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorTutor(feature string) string {
	return fmt.Sprintf(ErrOnlyTutorsCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentCanAccess, feature)
}

var (
	AllRoles = []string{
		RoleAdmin,
		RoleTutor,
		RoleStudent,
	}

	MemberRoles = []string{
		RoleTutor,
		RoleStudent,
	}

	TutorAndAdmin = []string{
		RoleTutor,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	StudentOnly = []string{
		RoleStudent,
	}
)

func IsMemberType(t string) bool {
	return t == MemberTypeStudent || t == MemberTypeTutor
}
