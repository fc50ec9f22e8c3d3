package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const (
	// CallbackPort is where the local redirect listener binds
	CallbackPort = 8089
	// Timeout bounds how long the user has to approve access
	Timeout = 5 * time.Minute
)

// RedirectURL is the callback registered with the Strava application
func RedirectURL() string {
	return fmt.Sprintf("http://localhost:%d/callback", CallbackPort)
}

// Authorize runs the authorization-code flow. It prints the consent URL to
// out, waits for Strava to redirect to the local listener, and exchanges the code.
func Authorize(ctx context.Context, cfg *oauth2.Config, out io.Writer) (*Result, error) {
	state, err := randomState()
	if err != nil {
		return nil, fmt.Errorf("generating state: %w", err)
	}

	listener, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", CallbackPort))
	if err != nil {
		return nil, fmt.Errorf("starting callback server: %w", err)
	}

	codes := make(chan string, 1)
	errs := make(chan error, 1)
	server := &http.Server{Handler: callbackHandler(state, codes, errs)}
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- fmt.Errorf("callback server: %w", err)
		}
	}()
	defer shutdown(server)

	fmt.Fprintf(out, "\nOpen this URL to let calwatch read your Strava activities:\n\n  %s\n\nWaiting for authorization...\n",
		cfg.AuthCodeURL(state, oauth2.AccessTypeOffline))

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	var code string
	select {
	case code = <-codes:
	case err := <-errs:
		return nil, err
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for authorization: %w", ctx.Err())
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging code for token: %w", err)
	}

	return &Result{Token: token, AthleteID: AthleteID(token)}, nil
}

func callbackHandler(state string, codes chan<- string, errs chan<- error) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		var err error
		switch {
		case q.Get("state") != state:
			err = errors.New("state mismatch in callback")
		case q.Get("error") != "":
			err = fmt.Errorf("authorization denied: %s", q.Get("error"))
		case q.Get("code") == "":
			err = errors.New("no code in callback")
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			select {
			case errs <- err:
			default:
			}
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "calwatch is connected to Strava. You can close this tab.")
		select {
		case codes <- q.Get("code"):
		default:
		}
	})
	return mux
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func shutdown(server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	server.Shutdown(ctx)
}
