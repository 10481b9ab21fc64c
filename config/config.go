package config

import (
	"github.com/pitabwire/frame/config"
)

type ChannelAccessConfig struct {
	config.ConfigurationDefault

	QueueAccessChangedName string `envDefault:"access.changed"               env:"QUEUE_ACCESS_CHANGED_NAME"`
	QueueAccessChangedURI  string `envDefault:"mem://channel.access.changed" env:"QUEUE_ACCESS_CHANGED_URI"`

	MaxChannelRolesPerUser int `envDefault:"500" env:"MAX_CHANNEL_ROLES_PER_USER"`
	ListDefaultCount       int `envDefault:"50"  env:"LIST_DEFAULT_COUNT"`
}
