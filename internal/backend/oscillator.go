package backend

// oscillator starts producing signal only while it is both enabled and
// connected to at least one receiver. Receivers are remembered across
// restarts and re-routed every time the source is started again.
type oscillator struct {
	*handle
	enabled   bool
	running   bool
	receivers []Endpoint
}

func (o *oscillator) Start() {
	o.enabled = true
	o.sync()
}

func (o *oscillator) Stop() {
	o.enabled = false
	o.sync()
}

func (o *oscillator) Connect(receiver Endpoint) {
	o.receivers = append(o.receivers, receiver)
	if o.running {
		o.handle.Connect(receiver)
	}
}

func (o *oscillator) Disconnect(receiver Endpoint) {
	idx := -1
	for i, r := range o.receivers {
		if r.Address() == receiver.Address() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	o.receivers = append(o.receivers[:idx], o.receivers[idx+1:]...)
	if o.running {
		o.handle.Disconnect(receiver)
	}
}

// OnConnect implements ConnectionObserver.
func (o *oscillator) OnConnect(Endpoint) { o.sync() }

// OnDisconnect implements ConnectionObserver.
func (o *oscillator) OnDisconnect(Endpoint) { o.sync() }

func (o *oscillator) sync() {
	want := o.enabled && len(o.receivers) > 0
	switch {
	case want && !o.running:
		for _, r := range o.receivers {
			o.handle.Connect(r)
		}
		o.handle.Start()
		o.running = true
	case !want && o.running:
		o.handle.Stop()
		for _, r := range o.receivers {
			o.handle.Disconnect(r)
		}
		o.running = false
	}
}
