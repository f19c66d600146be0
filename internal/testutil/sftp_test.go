package testutil_test

import (
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/filescan/internal/testutil"
)

func TestSFTPClient_CleanupReturns(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	done := make(chan bool, 1)

	go func() {
		done <- t.Run("session", func(t *testing.T) {
			client := testutil.SFTPClient(t)
			testutil.WriteRemote(t, client, "/dir/a.txt", "hello")

			info, err := client.Stat("/dir/a.txt")
			if err != nil {
				t.Fatalf("stat: %v", err)
			}

			if info.Size() != 5 {
				t.Fatalf("size = %d, want 5", info.Size())
			}
		})
	}()

	g.Eventually(done).WithTimeout(5 * time.Second).Should(Receive(BeTrue()))
}
