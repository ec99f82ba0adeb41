// Package auth implements the user registry and the single-session gate that
// guards every state-mutating operation.
package auth

const (
	minUsernameLength = 3
	minPasswordLength = 6

	// AdminPermission is the one task permission the system consults.
	// Nothing grants it at runtime; the check exists for forward
	// compatibility.
	AdminPermission = "admin"
)

// User is a registered account. The password is stored verbatim: hashing is
// out of scope for this system.
type User struct {
	Username         string
	Password         string
	EventPermissions []string
	TaskPermissions  []string
}

func (u User) hasTaskPermission(perm string) bool {
	for _, p := range u.TaskPermissions {
		if p == perm {
			return true
		}
	}
	return false
}

// Registry holds the user records and at most one active session.
//
// The session is the *username* of the logged-in user, resolved against the
// records on each use. Holding an index or pointer into the growable user
// slice would dangle across appends.
//
// The registry does no locking of its own; the owning App serializes every
// call through the process-wide lock.
type Registry struct {
	users   []User
	session string // empty = no session
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Signup validates and appends a new user record. It does not log the user
// in.
func (r *Registry) Signup(username, password string) error {
	if username == "" || password == "" {
		return ErrEmptyCredentials
	}
	if len(username) < minUsernameLength || len(password) < minPasswordLength {
		return ErrWeakCredentials
	}
	if r.lookup(username) >= 0 {
		return ErrDuplicateUser
	}
	r.users = append(r.users, User{Username: username, Password: password})
	return nil
}

// Login matches username and password exactly and opens the session.
func (r *Registry) Login(username, password string) error {
	idx := r.lookup(username)
	if idx < 0 || r.users[idx].Password != password {
		return ErrInvalidCredentials
	}
	r.session = username
	return nil
}

// Logout clears the session and returns the username that was logged in.
func (r *Registry) Logout() (string, error) {
	if r.session == "" {
		return "", ErrNoSession
	}
	name := r.session
	r.session = ""
	return name, nil
}

// LoggedIn reports whether a session is active.
func (r *Registry) LoggedIn() bool {
	return r.session != ""
}

// Current returns the logged-in user. The second result is false when no
// session is active.
func (r *Registry) Current() (User, bool) {
	if r.session == "" {
		return User{}, false
	}
	idx := r.lookup(r.session)
	if idx < 0 {
		return User{}, false
	}
	return r.users[idx], true
}

// CurrentIsAdmin reports whether the session user holds the admin task
// permission.
func (r *Registry) CurrentIsAdmin() bool {
	u, ok := r.Current()
	return ok && u.hasTaskPermission(AdminPermission)
}

func (r *Registry) lookup(username string) int {
	for i, u := range r.users {
		if u.Username == username {
			return i
		}
	}
	return -1
}
