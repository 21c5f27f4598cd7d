package model

type FileMod struct {
	Name       string
	Insertions LineCount
	Deletions  LineCount
}

func NewFileMod(name string, insertions LineCount, deletions LineCount) FileMod {
	return FileMod{
		Name:       name,
		Insertions: insertions,
		Deletions:  deletions,
	}
}

// Binary reports if git could not count the lines of the file.
func (f FileMod) Binary() bool {
	return !f.Insertions.Known() || !f.Deletions.Known()
}
