package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"companion-learning-be/internal/config"

	"github.com/fatih/color"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Exercises a running server end to end with a locally minted HS256 session token.
func main() {
	baseURL := flag.String("base", "http://localhost:3000/api", "API base URL")
	features := flag.String("features", "u:3_companion_limit", "fea claim for the minted token")
	flag.Parse()

	cfg := config.Load()
	if cfg.Identity.JwtSecret == "" {
		color.Red("JWT_SECRET is not set; cannot mint a session token")
		os.Exit(1)
	}

	userID := "smoke_" + uuid.NewString()[:8]
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"fea": *features,
		"exp": time.Now().Add(10 * time.Minute).Unix(),
	}).SignedString([]byte(cfg.Identity.JwtSecret))
	if err != nil {
		color.Red("Failed to sign token: %v", err)
		os.Exit(1)
	}

	c := &client{base: *baseURL, token: token, http: &http.Client{Timeout: 10 * time.Second}}
	color.Cyan("Smoke test as %s against %s\n", userID, *baseURL)

	color.Yellow("\n1. Permissions")
	c.call(http.MethodGet, "/companions/permissions", nil)

	color.Yellow("\n2. Create companion")
	created := c.call(http.MethodPost, "/companions", map[string]interface{}{
		"name": "Smoke Neura", "subject": "science", "topic": "Cells", "duration": 10,
	})
	var companion struct {
		Id string `json:"id"`
	}
	if err := json.Unmarshal(created, &companion); err != nil || companion.Id == "" {
		color.Red("No companion id in response, stopping")
		os.Exit(1)
	}

	color.Yellow("\n3. Search")
	c.call(http.MethodGet, "/companions?subject=sci&topic=cell&limit=5", nil)

	color.Yellow("\n4. Start session")
	c.call(http.MethodPost, "/companions/"+companion.Id+"/sessions", nil)

	color.Yellow("\n5. Bookmark twice (second must conflict)")
	c.call(http.MethodPost, "/companions/"+companion.Id+"/bookmark", map[string]string{"path": "/companions"})
	c.call(http.MethodPost, "/companions/"+companion.Id+"/bookmark", map[string]string{"path": "/companions"})

	color.Yellow("\n6. My bookmarks and sessions")
	c.call(http.MethodGet, "/me/bookmarks", nil)
	c.call(http.MethodGet, "/me/sessions", nil)

	color.Yellow("\n7. Remove bookmark")
	c.call(http.MethodDelete, "/companions/"+companion.Id+"/bookmark?path=/companions", nil)

	color.Cyan("\nDone")
}

type client struct {
	base  string
	token string
	http  *http.Client
}

// call prints the outcome and returns the envelope's data field.
func (c *client) call(method, path string, body interface{}) json.RawMessage {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		color.Red("Failed: %v", err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		color.Red("Failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	var env struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &env)

	if resp.StatusCode >= 400 {
		color.Red("%s %s -> %s: %s", method, path, resp.Status, env.Message)
	} else {
		color.Green("%s %s -> %s", method, path, resp.Status)
	}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		var pretty bytes.Buffer
		if json.Indent(&pretty, env.Data, "", "  ") == nil {
			fmt.Println(pretty.String())
		}
	}
	return env.Data
}
