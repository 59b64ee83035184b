package session

// Address is the last known IP of the device. The zero value is empty.
// It lives only as long as the process.
type Address struct {
	ip string
}

// Get returns the cached address, or "" if none.
func (a *Address) Get() string { return a.ip }

// Set caches ip.
func (a *Address) Set(ip string) { a.ip = ip }

// Invalidate forgets the cached address so the next remote operation
// rediscovers the device.
func (a *Address) Invalidate() { a.ip = "" }

// Known reports whether an address is cached.
func (a *Address) Known() bool { return a.ip != "" }
