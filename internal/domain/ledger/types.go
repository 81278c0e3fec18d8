package ledger

type EntryType string

const (
	TypeUsage      EntryType = "usage"
	TypeReturn     EntryType = "return"
	TypeAdjustment EntryType = "adjustment"
)

func (t EntryType) String() string {
	return string(t)
}

func (t EntryType) IsValid() bool {
	switch t {
	case TypeUsage, TypeReturn, TypeAdjustment:
		return true
	default:
		return false
	}
}
