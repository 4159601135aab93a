package logging_test

import (
	"os"
	"path"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/backbone81/wal-fixtures/internal/logging"
)

var _ = Describe("Logger", func() {
	It("should write log lines at or above the configured level", func() {
		logFile := path.Join(GinkgoT().TempDir(), "log.txt")
		Expect(logging.Init(logging.Config{Level: "warn", Output: logFile})).To(Succeed())

		logging.Info("hidden line")
		logging.Warn("visible line", zap.String("key", "name"))
		_ = logging.Sync()

		content, err := os.ReadFile(logFile)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(content)).To(ContainSubstring("visible line"))
		Expect(string(content)).To(ContainSubstring(`"key": "name"`))
		Expect(string(content)).ToNot(ContainSubstring("hidden line"))
	})

	It("should write debug and error lines at the debug level", func() {
		logFile := path.Join(GinkgoT().TempDir(), "log.txt")
		Expect(logging.Init(logging.Config{Level: "debug", Output: logFile})).To(Succeed())

		logging.Debug("debug line")
		logging.Error("error line", zap.Int("attempt", 3))
		_ = logging.Sync()

		content, err := os.ReadFile(logFile)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(content)).To(ContainSubstring("DEBUG\tdebug line"))
		Expect(string(content)).To(ContainSubstring("ERROR\terror line"))
		Expect(string(content)).To(ContainSubstring(`"attempt": 3`))
	})

	It("should fall back to info for unknown levels", func() {
		logFile := path.Join(GinkgoT().TempDir(), "log.txt")
		Expect(logging.Init(logging.Config{Level: "verbose", Output: logFile})).To(Succeed())
		Expect(logging.Logger().Core().Enabled(zap.InfoLevel)).To(BeTrue())
		Expect(logging.Logger().Core().Enabled(zap.DebugLevel)).To(BeFalse())
	})

	It("should fail for an output which cannot be opened", func() {
		Expect(logging.Init(logging.Config{Output: path.Join(GinkgoT().TempDir(), "missing", "log.txt")})).ToNot(Succeed())
	})
})
