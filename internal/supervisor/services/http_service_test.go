// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

type mockServer struct {
	listenErr   error
	shutdownErr error
	listenCh    chan struct{} // closed to unblock ListenAndServe
	shutdowns   chan struct{}
}

func newMockServer() *mockServer {
	return &mockServer{
		listenCh:  make(chan struct{}),
		shutdowns: make(chan struct{}, 1),
	}
}

func (m *mockServer) ListenAndServe() error {
	<-m.listenCh
	if m.listenErr != nil {
		return m.listenErr
	}
	return http.ErrServerClosed
}

func (m *mockServer) Shutdown(_ context.Context) error {
	m.shutdowns <- struct{}{}
	close(m.listenCh)
	return m.shutdownErr
}

func TestHTTPServerServiceGracefulShutdown(t *testing.T) {
	srv := newMockServer()
	svc := NewHTTPServerService(srv, 2*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- svc.Serve(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Serve returned %v, want context.Canceled", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return after context cancellation")
	}

	select {
	case <-srv.shutdowns:
	default:
		t.Fatal("expected Shutdown to be called")
	}
}

func TestHTTPServerServiceListenError(t *testing.T) {
	srv := newMockServer()
	srv.listenErr = errors.New("listen tcp: address already in use")
	close(srv.listenCh)

	svc := NewHTTPServerService(srv, time.Second)

	err := svc.Serve(context.Background())
	if err == nil {
		t.Fatal("Serve returned nil, want listen error")
	}
	if !errors.Is(err, srv.listenErr) {
		t.Fatalf("Serve returned %v, want wrapped %v", err, srv.listenErr)
	}
}

func TestHTTPServerServiceShutdownError(t *testing.T) {
	srv := newMockServer()
	srv.shutdownErr = errors.New("shutdown deadline exceeded")

	svc := NewHTTPServerService(srv, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- svc.Serve(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, srv.shutdownErr) {
			t.Fatalf("Serve returned %v, want wrapped %v", err, srv.shutdownErr)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return after context cancellation")
	}
}

func TestHTTPServerServiceDefaultTimeout(t *testing.T) {
	svc := NewHTTPServerService(newMockServer(), 0)
	if svc.shutdownTimeout != 10*time.Second {
		t.Fatalf("shutdownTimeout = %v, want 10s default", svc.shutdownTimeout)
	}
}

func TestHTTPServerServiceString(t *testing.T) {
	svc := NewHTTPServerService(newMockServer(), time.Second)
	if got := svc.String(); got != "http-server" {
		t.Fatalf("String() = %q, want %q", got, "http-server")
	}
}
