package config

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantSize int64
		wantErr  bool
	}{
		{
			name:     "defaults",
			wantSize: 20 * 1024 * 1024,
		},
		{
			name:     "plain bytes",
			args:     []string{"--max-db-size", "1000"},
			wantSize: 1000,
		},
		{
			name:     "decimal quantity",
			args:     []string{"--max-db-size", "1G", "--store", "MySQL"},
			wantSize: 1000 * 1000 * 1000,
		},
		{
			name:     "cron schedule",
			args:     []string{"--schedule", "*/5 * * * *"},
			wantSize: 20 * 1024 * 1024,
		},
		{
			name:    "zero size",
			args:    []string{"--max-db-size", "0"},
			wantErr: true,
		},
		{
			name:    "negative size",
			args:    []string{"--max-db-size", "-5Mi"},
			wantErr: true,
		},
		{
			name:    "garbage size",
			args:    []string{"--max-db-size", "lots"},
			wantErr: true,
		},
		{
			name:    "incorrect store",
			args:    []string{"--store", "qwe"},
			wantErr: true,
		},
		{
			name:    "incorrect schedule",
			args:    []string{"--schedule", "every now and then"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			f := pflag.NewFlagSet("test", pflag.ContinueOnError)
			f, _, err := ParseCmdLine(f, tt.args)
			g.Expect(err).ToNot(HaveOccurred())

			got, err := NewConfig(viper.New(), f)
			if tt.wantErr {
				g.Expect(err).To(HaveOccurred())
			} else {
				g.Expect(err).ToNot(HaveOccurred())
				g.Expect(got).ToNot(BeNil())
				g.Expect(got.MaxDBSize()).To(Equal(tt.wantSize))
			}
		})
	}
}

func TestConfigViper(t *testing.T) {
	g := NewWithT(t)
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.String("listen", "", "")
	f.String("namespace", "def", "")
	f.Int("mysql-port", 3306, "")
	f.Bool("ui", false, "")
	err := f.Parse([]string{"--listen=:1234", "--ui"})
	g.Expect(err).ToNot(HaveOccurred())

	v := viper.New()
	v.Set("mysql-host", "db.local")
	v.Set("mysql-socket", "/tmp/mysql.sock")
	v.Set("mysql-user", "admin")
	v.Set("mysql-password", "pwd")
	v.Set("mysql-timeout", "3s")
	v.Set("mysql-read-timeout", time.Minute)
	v.Set("mysql-connect-retries", "7")
	v.Set("admin-db", "mysql")
	v.Set("max-db-size", "2Ki")
	v.Set("schedule", "@hourly")
	v.Set("store", "file")
	v.Set("tenants-file", "/etc/dbquota/tenants.yaml")
	v.Set("store-db", "node")
	v.Set("store-table", "services")
	v.Set("leader-elect", true)
	v.Set("lease-name", "quota")
	v.Set("kube-cluster-mode-out", true)
	v.Set("kube-config", "/asd")

	t.Setenv("POD_NAMESPACE", "test-ns")
	t.Setenv("DQ_MYSQL_PORT", "3310")

	cfg, err := NewConfig(v, f)
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(cfg.Listen()).To(Equal(":1234"))
	g.Expect(cfg.UI()).To(BeTrue())

	g.Expect(cfg.MySQLHost()).To(Equal("db.local"))
	g.Expect(cfg.MySQLPort()).To(Equal(3310))
	g.Expect(cfg.MySQLSocket()).To(Equal("/tmp/mysql.sock"))
	g.Expect(cfg.MySQLUser()).To(Equal("admin"))
	g.Expect(cfg.MySQLPassword()).To(Equal("pwd"))
	g.Expect(cfg.MySQLTimeout()).To(Equal(3 * time.Second))
	g.Expect(cfg.MySQLReadTimeout()).To(Equal(time.Minute))
	g.Expect(cfg.MySQLConnectRetries()).To(Equal(7))
	g.Expect(cfg.AdminDB()).To(Equal("mysql"))

	g.Expect(cfg.MaxDBSize()).To(Equal(int64(2048)))
	g.Expect(cfg.Schedule()).To(Equal("@hourly"))

	g.Expect(cfg.Store()).To(Equal(StoreFile))
	g.Expect(cfg.TenantsFile()).To(Equal("/etc/dbquota/tenants.yaml"))
	g.Expect(cfg.StoreDB()).To(Equal("node"))
	g.Expect(cfg.StoreTable()).To(Equal("services"))

	g.Expect(cfg.LeaderElect()).To(BeTrue())
	g.Expect(cfg.Namespace()).To(Equal("test-ns"))
	g.Expect(cfg.LeaseName()).To(Equal("quota"))
	g.Expect(cfg.KubeClusterModeOut()).To(BeTrue())
	g.Expect(cfg.KubeConfig()).To(Equal("/asd"))
}

func TestZapLogLevel(t *testing.T) {
	g := NewWithT(t)
	g.Expect(ZapLogLevel("DEBUG", zapcore.InfoLevel)).To(Equal(zapcore.DebugLevel))
	g.Expect(ZapLogLevel("warn", zapcore.InfoLevel)).To(Equal(zapcore.WarnLevel))
	g.Expect(ZapLogLevel("", zapcore.InfoLevel)).To(Equal(zapcore.InfoLevel))
	g.Expect(ZapLogLevel("verbose", zapcore.ErrorLevel)).To(Equal(zapcore.ErrorLevel))
}
