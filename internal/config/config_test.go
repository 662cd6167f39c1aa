package config_test

import (
	"os"
	"surveyapp/internal/config"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewApp", func() {
	var (
		app config.App
		err error
	)

	setenv := func(key, value string) {
		prev, had := os.LookupEnv(key)
		Expect(os.Setenv(key, value)).To(Succeed())
		DeferCleanup(func() {
			if had {
				os.Setenv(key, prev)
				return
			}
			os.Unsetenv(key)
		})
	}

	unsetenv := func(key string) {
		prev, had := os.LookupEnv(key)
		Expect(os.Unsetenv(key)).To(Succeed())
		DeferCleanup(func() {
			if had {
				os.Setenv(key, prev)
			}
		})
	}

	BeforeEach(func() {
		for _, key := range []string{"DB_NAME", "API_PORT", "LOG_LEVEL", "PASSWORD_HASH_ALGORITHM",
			"SUBMIT_FIRST_ANSWER_ONLY", "SHUTDOWN_TIMEOUT", "STORE_CONNECT_TIMEOUT"} {
			unsetenv(key)
		}
		setenv("CONNECTION_STRING", "mongodb://localhost:27017")
	})

	JustBeforeEach(func() {
		app, err = config.NewApp()
	})

	When("only the connection string is set", func() {
		It("should fill in the defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app).To(Equal(config.App{
				ConnectionString:      "mongodb://localhost:27017",
				DBName:                "pollingpairDB",
				Port:                  "8000",
				LogLevel:              "info",
				PasswordHashAlgorithm: "argon2id",
				ShutdownTimeout:       10 * time.Second,
				StoreConnectTimeout:   10 * time.Second,
			}))
		})
	})

	When("values are overridden", func() {
		BeforeEach(func() {
			setenv("API_PORT", "9090")
			setenv("PASSWORD_HASH_ALGORITHM", "bcrypt")
			setenv("SUBMIT_FIRST_ANSWER_ONLY", "true")
			setenv("SHUTDOWN_TIMEOUT", "3s")
		})

		It("should use them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("9090"))
			Expect(app.PasswordHashAlgorithm).To(Equal("bcrypt"))
			Expect(app.SubmitFirstAnswerOnly).To(BeTrue())
			Expect(app.ShutdownTimeout).To(Equal(3 * time.Second))
		})
	})

	When("the connection string is missing", func() {
		BeforeEach(func() {
			unsetenv("CONNECTION_STRING")
		})

		It("should fail", func() {
			Expect(err).To(MatchError(ContainSubstring("CONNECTION_STRING")))
		})
	})

	When("the port is not a number", func() {
		BeforeEach(func() {
			setenv("API_PORT", "http")
		})

		It("should fail validation", func() {
			Expect(err).To(MatchError(ContainSubstring("validate config")))
		})
	})

	When("the hash algorithm is unknown", func() {
		BeforeEach(func() {
			setenv("PASSWORD_HASH_ALGORITHM", "md5")
		})

		It("should fail validation", func() {
			Expect(err).To(MatchError(ContainSubstring("PasswordHashAlgorithm")))
		})
	})
})
