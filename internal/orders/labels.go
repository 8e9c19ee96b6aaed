package orders

// Descriptor is display metadata for one enum value. Kept as a lookup table
// so views never branch on individual statuses.
type Descriptor struct {
	Label string
	Color string
}

var statusLabels = map[Status]Descriptor{
	StatusPending:    {Label: "Pending", Color: "#6B7280"},
	StatusInProgress: {Label: "In Progress", Color: "#3B82F6"},
	StatusCompleted:  {Label: "Completed", Color: "#10B981"},
	StatusCancelled:  {Label: "Cancelled", Color: "#EF4444"},
}

var priorityLabels = map[Priority]Descriptor{
	PriorityLow:    {Label: "Low", Color: "#9CA3AF"},
	PriorityNormal: {Label: "Normal", Color: "#6B7280"},
	PriorityHigh:   {Label: "High", Color: "#F59E0B"},
	PriorityUrgent: {Label: "Urgent", Color: "#EF4444"},
}

func (s Status) Describe() Descriptor {
	if d, ok := statusLabels[s]; ok {
		return d
	}
	return Descriptor{Label: string(s)}
}

func (p Priority) Describe() Descriptor {
	if d, ok := priorityLabels[p]; ok {
		return d
	}
	return Descriptor{Label: string(p)}
}
