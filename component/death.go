package component

// Death tags an entity for removal. Systems tag during the tick; the
// cull system compacts at the end, so iteration never invalidates
type Death struct{}
