package mysql

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/selebrow/dbquota/pkg/config"
)

func newEngineConfig(g *WithT, args ...string) config.EngineConfig {
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs, _, err := config.ParseCmdLine(f, args)
	g.Expect(err).ToNot(HaveOccurred())
	cfg, err := config.NewConfig(viper.New(), fs)
	g.Expect(err).ToNot(HaveOccurred())
	return cfg
}

func TestDriverConfig_TCP(t *testing.T) {
	g := NewWithT(t)
	cfg := newEngineConfig(g,
		"--mysql-host", "db.local",
		"--mysql-port", "3307",
		"--mysql-user", "root",
		"--mysql-password", "secret",
		"--mysql-timeout", "3s",
		"--mysql-read-timeout", "1m",
	)

	got := DriverConfig(cfg, "mysql")
	g.Expect(got.Net).To(Equal("tcp"))
	g.Expect(got.Addr).To(Equal("db.local:3307"))
	g.Expect(got.User).To(Equal("root"))
	g.Expect(got.Passwd).To(Equal("secret"))
	g.Expect(got.DBName).To(Equal("mysql"))
	g.Expect(got.Timeout).To(Equal(3 * time.Second))
	g.Expect(got.ReadTimeout).To(Equal(time.Minute))
	g.Expect(got.WriteTimeout).To(Equal(time.Minute))
	g.Expect(got.ClientFoundRows).To(BeTrue())
}

func TestDriverConfig_Socket(t *testing.T) {
	g := NewWithT(t)
	cfg := newEngineConfig(g, "--mysql-socket", "/var/run/mysqld/mysqld.sock")

	got := DriverConfig(cfg, "")
	g.Expect(got.Net).To(Equal("unix"))
	g.Expect(got.Addr).To(Equal("/var/run/mysqld/mysqld.sock"))
	g.Expect(got.DBName).To(BeEmpty())
}
