package gausslegendre

// NewtonRoot exposes newtonRoot to the external test package.
var NewtonRoot = newtonRoot
