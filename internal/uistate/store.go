// Package uistate es el contenedor de estado del shell de UI: espejos
// de las colecciones del servidor para mostrar, y banderas transitorias
// de carga, notificaciones y modales. Las mutaciones entran como
// comandos explícitos y los suscriptores reciben el snapshot resultante,
// en lugar de campos reactivos ambientales.
package uistate

import (
	"sync"
	"time"

	"granja-porcina/internal/domain/alimentaciones"
	"granja-porcina/internal/domain/clientes"
)

type NotificationType string

const (
	NotifySuccess NotificationType = "success"
	NotifyError   NotificationType = "error"
	NotifyWarning NotificationType = "warning"
	NotifyInfo    NotificationType = "info"
)

type Notification struct {
	ID        int
	Message   string
	Type      NotificationType
	Timestamp time.Time
}

type Modal string

const (
	ModalCliente      Modal = "cliente"
	ModalPorcino      Modal = "porcino"
	ModalAlimentacion Modal = "alimentacion"
	ModalConfirm      Modal = "confirm"
)

// State es un snapshot inmutable desde el punto de vista del lector:
// los slices y el map se copian en cada notificación.
type State struct {
	IsLoading      bool
	LoadingMessage string

	Notifications []Notification

	BackendConnected bool

	ClientesCache       []clientes.Cliente
	AlimentacionesCache []alimentaciones.Alimentacion

	Modals map[Modal]bool
}

// Command es una mutación del estado. Las implementaciones viven en
// este paquete; el método es no exportado a propósito.
type Command interface {
	apply(s *State, st *Store)
}

type Store struct {
	mu     sync.Mutex
	state  State
	nextID int

	nextSub int
	subs    map[int]func(State)
}

func NewStore() *Store {
	return &Store{
		state: State{
			Notifications: []Notification{},
			Modals: map[Modal]bool{
				ModalCliente:      false,
				ModalPorcino:      false,
				ModalAlimentacion: false,
				ModalConfirm:      false,
			},
		},
		subs: make(map[int]func(State)),
	}
}

// Dispatch aplica el comando y notifica a todos los suscriptores con el
// snapshot nuevo. Los listeners se invocan fuera del lock.
func (st *Store) Dispatch(cmd Command) {
	st.mu.Lock()
	cmd.apply(&st.state, st)
	snap := st.snapshotLocked()
	listeners := make([]func(State), 0, len(st.subs))
	for _, fn := range st.subs {
		listeners = append(listeners, fn)
	}
	st.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

// Subscribe registra un listener de re-render y devuelve la función
// para darse de baja.
func (st *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	st.mu.Lock()
	defer st.mu.Unlock()

	id := st.nextSub
	st.nextSub++
	st.subs[id] = fn

	return func() {
		st.mu.Lock()
		defer st.mu.Unlock()
		delete(st.subs, id)
	}
}

func (st *Store) Snapshot() State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.snapshotLocked()
}

// ClienteFromCache busca en el espejo local, nunca en el servidor.
func (st *Store) ClienteFromCache(id string) (clientes.Cliente, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for _, c := range st.state.ClientesCache {
		if c.ID == id {
			return c, true
		}
	}
	return clientes.Cliente{}, false
}

func (st *Store) AlimentacionFromCache(id string) (alimentaciones.Alimentacion, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for _, a := range st.state.AlimentacionesCache {
		if a.ID == id {
			return a, true
		}
	}
	return alimentaciones.Alimentacion{}, false
}

func (st *Store) snapshotLocked() State {
	snap := st.state
	snap.Notifications = append([]Notification(nil), st.state.Notifications...)
	snap.ClientesCache = append([]clientes.Cliente(nil), st.state.ClientesCache...)
	snap.AlimentacionesCache = append([]alimentaciones.Alimentacion(nil), st.state.AlimentacionesCache...)
	snap.Modals = make(map[Modal]bool, len(st.state.Modals))
	for k, v := range st.state.Modals {
		snap.Modals[k] = v
	}
	return snap
}

// ---- Comandos ----

type SetLoading struct {
	Loading bool
	Message string
}

func (c SetLoading) apply(s *State, _ *Store) {
	s.IsLoading = c.Loading
	s.LoadingMessage = c.Message
	if c.Loading && c.Message == "" {
		s.LoadingMessage = "Cargando..."
	}
}

// ShowNotification agrega una notificación con id secuencial. La
// expiración no corre en un goroutine ambiental: el shell que maneja el
// timer despacha RemoveNotification cuando vence la duración.
type ShowNotification struct {
	Message string
	Type    NotificationType
}

func (c ShowNotification) apply(s *State, st *Store) {
	typ := c.Type
	if typ == "" {
		typ = NotifyInfo
	}
	st.nextID++
	s.Notifications = append(s.Notifications, Notification{
		ID:        st.nextID,
		Message:   c.Message,
		Type:      typ,
		Timestamp: time.Now(),
	})
}

type RemoveNotification struct {
	ID int
}

func (c RemoveNotification) apply(s *State, _ *Store) {
	for i, n := range s.Notifications {
		if n.ID == c.ID {
			s.Notifications = append(s.Notifications[:i], s.Notifications[i+1:]...)
			return
		}
	}
}

type ClearNotifications struct{}

func (ClearNotifications) apply(s *State, _ *Store) {
	s.Notifications = []Notification{}
}

type OpenModal struct {
	Name Modal
}

func (c OpenModal) apply(s *State, _ *Store) {
	// Nombres desconocidos se ignoran, no se crean banderas nuevas.
	if _, ok := s.Modals[c.Name]; ok {
		s.Modals[c.Name] = true
	}
}

type CloseModal struct {
	Name Modal
}

func (c CloseModal) apply(s *State, _ *Store) {
	if _, ok := s.Modals[c.Name]; ok {
		s.Modals[c.Name] = false
	}
}

type CloseAllModals struct{}

func (CloseAllModals) apply(s *State, _ *Store) {
	for k := range s.Modals {
		s.Modals[k] = false
	}
}

type SetBackendConnected struct {
	Connected bool
}

func (c SetBackendConnected) apply(s *State, _ *Store) {
	s.BackendConnected = c.Connected
}

type UpdateClientesCache struct {
	Clientes []clientes.Cliente
}

func (c UpdateClientesCache) apply(s *State, _ *Store) {
	s.ClientesCache = append([]clientes.Cliente(nil), c.Clientes...)
}

type UpdateAlimentacionesCache struct {
	Alimentaciones []alimentaciones.Alimentacion
}

func (c UpdateAlimentacionesCache) apply(s *State, _ *Store) {
	s.AlimentacionesCache = append([]alimentaciones.Alimentacion(nil), c.Alimentaciones...)
}
