package contact

import "fmt"

// Labels returns the ordered label list
func (m *Manager) Labels() []string {
	var labels []string
	m.store.Load(labelsKey, &labels)
	return labels
}

// AddLabel appends a new label to the list. Blank names and exact
// duplicates are rejected.
func (m *Manager) AddLabel(name string) Result {
	if name == "" {
		return failure("Label required")
	}

	labels := m.Labels()
	for _, l := range labels {
		if l == name {
			return failure("Label already exists")
		}
	}

	labels = append(labels, name)
	if err := m.store.Save(labelsKey, labels); err != nil {
		return failure(fmt.Sprintf("Failed to save labels: %v", err))
	}

	return Result{Success: true}
}

// RenameLabel replaces oldName with newName, keeping its position, and
// rewrites every contact carrying the old label in the same operation
func (m *Manager) RenameLabel(oldName, newName string) Result {
	if newName == "" {
		return failure("Label required")
	}

	labels := m.Labels()
	if newName != oldName {
		for _, l := range labels {
			if l == newName {
				return failure("Label already exists")
			}
		}
	}

	for i, l := range labels {
		if l == oldName {
			labels[i] = newName
		}
	}
	if err := m.store.Save(labelsKey, labels); err != nil {
		return failure(fmt.Sprintf("Failed to save labels: %v", err))
	}

	contacts := m.Contacts()
	changed := false
	for i := range contacts {
		if contacts[i].Label == oldName {
			contacts[i].Label = newName
			changed = true
		}
	}
	if changed {
		if err := m.store.Save(contactsKey, contacts); err != nil {
			return failure(fmt.Sprintf("Failed to save contacts: %v", err))
		}
	}

	return Result{Success: true}
}

// DeleteLabel removes a label from the list and clears it from every
// contact referencing it, so no contact is left pointing at a removed
// label
func (m *Manager) DeleteLabel(name string) Result {
	labels := m.Labels()
	kept := labels[:0:0]
	for _, l := range labels {
		if l != name {
			kept = append(kept, l)
		}
	}
	if err := m.store.Save(labelsKey, kept); err != nil {
		return failure(fmt.Sprintf("Failed to save labels: %v", err))
	}

	contacts := m.Contacts()
	changed := false
	for i := range contacts {
		if contacts[i].Label == name {
			contacts[i].Label = ""
			changed = true
		}
	}
	if changed {
		if err := m.store.Save(contactsKey, contacts); err != nil {
			return failure(fmt.Sprintf("Failed to save contacts: %v", err))
		}
	}

	return Result{Success: true}
}
