package cereal

//go:generate sh -c "capnp compile --import-path=$(go list -m -f {{.Dir}} capnproto.org/go/capnp/v3)/std -o- log/log.capnp custom/custom.capnp | capnpc-go -promises=false -schemas=false -structstrings=false"
