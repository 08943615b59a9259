package domain

// FileType is one row of the scan result shown to the user.
type FileType struct {
	Extension string
	Label     string
	Count     int
	Selected  bool
}

// SelectedExtensions collects the extensions of every selected row.
func SelectedExtensions(types []FileType) Selection {
	s := Selection{}
	for _, t := range types {
		if t.Selected {
			s[NormalizeExtension(t.Extension)] = struct{}{}
		}
	}
	return s
}
