package reports

// StatusCounts summarizes a set of reports for the tracking footer. Pending
// covers reports that are submitted or assigned but not yet being worked on.
type StatusCounts struct {
	Resolved   int
	InProgress int
	Pending    int
	Total      int
}

// FilterByStatus returns the reports whose normalized status matches.
func FilterByStatus(all []Report, status string) []Report {
	want := Normalize(status)
	var out []Report
	for _, r := range all {
		if Normalize(r.Status) == want {
			out = append(out, r)
		}
	}
	return out
}

// CountByStatus aggregates reports into the tracking summary buckets.
func CountByStatus(all []Report) StatusCounts {
	counts := StatusCounts{Total: len(all)}
	for _, r := range all {
		switch Normalize(r.Status) {
		case StatusResolved:
			counts.Resolved++
		case StatusInProgress:
			counts.InProgress++
		case StatusSubmitted, StatusAssigned:
			counts.Pending++
		}
	}
	return counts
}

// CountByDepartment tallies reports per department slug. Reports without a
// department are counted under "other".
func CountByDepartment(all []Report) map[string]int {
	counts := make(map[string]int)
	for _, r := range all {
		dept := r.Department
		if dept == "" {
			dept = DepartmentOther
		}
		counts[dept]++
	}
	return counts
}
