// Package mapper converts between transfer objects and entities. Every entity
// gets two merge functions: UpdateXFromDto overwrites all mapped fields (a nil
// DTO field overwrites with the zero value), PatchXFromDto overwrites only the
// fields present in the DTO. Primary keys are never touched by either.
package mapper

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
