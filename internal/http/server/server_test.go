package server_test

import (
	"net/http"
	"surveyapp/internal/http/server"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HTTPServer", func() {
	It("should report ErrServerClosed after a shutdown", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), "0", time.Second)

		errChan := srv.Run()
		Expect(srv.Shutdown()).To(Succeed())
		Eventually(errChan).Should(Receive(MatchError(http.ErrServerClosed)))
	})
})
