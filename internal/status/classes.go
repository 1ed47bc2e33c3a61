// internal/status/classes.go
package status

// Per-class shorthands for call sites that hard-code the class.

func (s *Store) SetFault(id ID)          { s.Set(id, Fault) }
func (s *Store) ClearFault(id ID)        { s.Clear(id, Fault) }
func (s *Store) ToggleFault(id ID)       { s.Toggle(id, Fault) }
func (s *Store) IsFaultSet(id ID) bool   { return s.IsSet(id, Fault) }
func (s *Store) LastFault() ID           { return s.LastSet(Fault) }
func (s *Store) SetWarning(id ID)        { s.Set(id, Warning) }
func (s *Store) ClearWarning(id ID)      { s.Clear(id, Warning) }
func (s *Store) ToggleWarning(id ID)     { s.Toggle(id, Warning) }
func (s *Store) IsWarningSet(id ID) bool { return s.IsSet(id, Warning) }
func (s *Store) LastWarning() ID         { return s.LastSet(Warning) }
func (s *Store) SetInfo(id ID)           { s.Set(id, Info) }
func (s *Store) ClearInfo(id ID)         { s.Clear(id, Info) }
func (s *Store) ToggleInfo(id ID)        { s.Toggle(id, Info) }
func (s *Store) IsInfoSet(id ID) bool    { return s.IsSet(id, Info) }
func (s *Store) LastInfo() ID            { return s.LastSet(Info) }
