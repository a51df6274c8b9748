// cmd/gentoken/main.go prints a signed access token for local development.
// Usage: go run ./cmd/gentoken [-ttl 8h] [-perm Supplier:Add,Edit -perm Product:Add]
// Without -perm the token grants every action on every resource.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"catalog/internal/config"
	"catalog/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
)

type permFlags []string

func (p *permFlags) String() string     { return strings.Join(*p, " ") }
func (p *permFlags) Set(v string) error { *p = append(*p, v); return nil }

func main() {
	var perms permFlags
	ttl := flag.Duration("ttl", 8*time.Hour, "token lifetime")
	user := flag.String("user", "dev", "username claim")
	flag.Var(&perms, "perm", "Resource:Action[,Action...] (repeatable)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if cfg.JWTSecret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is not set")
		os.Exit(1)
	}

	permissions, err := parsePermissions(perms)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	now := time.Now()
	claims := middleware.JWTClaims{
		UserID:      *user,
		Username:    *user,
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(*ttl)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
}

func parsePermissions(perms []string) (map[string][]string, error) {
	if len(perms) == 0 {
		all := []string{"Add", "Edit", "Remove"}
		return map[string][]string{"Supplier": all, "Product": all}, nil
	}
	out := make(map[string][]string, len(perms))
	for _, p := range perms {
		resource, actions, ok := strings.Cut(p, ":")
		if !ok || resource == "" || actions == "" {
			return nil, fmt.Errorf("invalid -perm %q, want Resource:Action[,Action]", p)
		}
		out[resource] = append(out[resource], strings.Split(actions, ",")...)
	}
	return out, nil
}
