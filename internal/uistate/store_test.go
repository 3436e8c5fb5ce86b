package uistate

import (
	"testing"

	"granja-porcina/internal/domain/clientes"
)

func TestSetLoading_MensajePorDefecto(t *testing.T) {
	st := NewStore()

	st.Dispatch(SetLoading{Loading: true})
	s := st.Snapshot()
	if !s.IsLoading || s.LoadingMessage != "Cargando..." {
		t.Fatalf("got loading=%v message=%q", s.IsLoading, s.LoadingMessage)
	}

	st.Dispatch(SetLoading{Loading: true, Message: "Guardando..."})
	if s = st.Snapshot(); s.LoadingMessage != "Guardando..." {
		t.Fatalf("message = %q", s.LoadingMessage)
	}

	st.Dispatch(SetLoading{Loading: false})
	if s = st.Snapshot(); s.IsLoading {
		t.Fatal("expected loading off")
	}
}

func TestNotificaciones_CicloDeVida(t *testing.T) {
	st := NewStore()

	st.Dispatch(ShowNotification{Message: "Cliente guardado", Type: NotifySuccess})
	st.Dispatch(ShowNotification{Message: "Algo falló"})

	s := st.Snapshot()
	if len(s.Notifications) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(s.Notifications))
	}
	if s.Notifications[0].ID == s.Notifications[1].ID {
		t.Fatal("ids must be unique")
	}
	// Sin tipo explícito cae en info.
	if s.Notifications[1].Type != NotifyInfo {
		t.Fatalf("type = %q, want info", s.Notifications[1].Type)
	}

	st.Dispatch(RemoveNotification{ID: s.Notifications[0].ID})
	if s = st.Snapshot(); len(s.Notifications) != 1 || s.Notifications[0].Message != "Algo falló" {
		t.Fatalf("unexpected notifications after remove: %+v", s.Notifications)
	}

	// Quitar un id inexistente no hace nada.
	st.Dispatch(RemoveNotification{ID: 999})
	if s = st.Snapshot(); len(s.Notifications) != 1 {
		t.Fatal("remove of unknown id must be a no-op")
	}

	st.Dispatch(ClearNotifications{})
	if s = st.Snapshot(); len(s.Notifications) != 0 {
		t.Fatal("expected empty notifications")
	}
}

func TestModales(t *testing.T) {
	st := NewStore()

	st.Dispatch(OpenModal{Name: ModalCliente})
	st.Dispatch(OpenModal{Name: ModalConfirm})

	s := st.Snapshot()
	if !s.Modals[ModalCliente] || !s.Modals[ModalConfirm] {
		t.Fatalf("modals = %+v", s.Modals)
	}

	// Un nombre desconocido se ignora sin crear la bandera.
	st.Dispatch(OpenModal{Name: Modal("inexistente")})
	if s = st.Snapshot(); len(s.Modals) != 4 {
		t.Fatalf("unknown modal must not be added: %+v", s.Modals)
	}

	st.Dispatch(CloseModal{Name: ModalCliente})
	if s = st.Snapshot(); s.Modals[ModalCliente] {
		t.Fatal("expected cliente modal closed")
	}

	st.Dispatch(CloseAllModals{})
	s = st.Snapshot()
	for name, open := range s.Modals {
		if open {
			t.Fatalf("modal %s still open", name)
		}
	}
}

func TestSubscribe_RecibeSnapshots(t *testing.T) {
	st := NewStore()

	var got []State
	unsubscribe := st.Subscribe(func(s State) { got = append(got, s) })

	st.Dispatch(SetBackendConnected{Connected: true})
	st.Dispatch(ShowNotification{Message: "hola"})

	if len(got) != 2 {
		t.Fatalf("expected 2 notifications to listener, got %d", len(got))
	}
	if !got[0].BackendConnected {
		t.Fatal("first snapshot should reflect the command")
	}
	if len(got[1].Notifications) != 1 {
		t.Fatal("second snapshot should carry the notification")
	}

	unsubscribe()
	st.Dispatch(ClearNotifications{})
	if len(got) != 2 {
		t.Fatal("unsubscribed listener must not be called")
	}
}

func TestSnapshot_EsCopia(t *testing.T) {
	st := NewStore()

	st.Dispatch(UpdateClientesCache{Clientes: []clientes.Cliente{{ID: "cli-1", Cedula: "001"}}})

	s := st.Snapshot()
	s.ClientesCache[0].Cedula = "mutada"
	s.Modals[ModalCliente] = true

	fresh := st.Snapshot()
	if fresh.ClientesCache[0].Cedula != "001" {
		t.Fatal("mutating a snapshot must not affect the store")
	}
	if fresh.Modals[ModalCliente] {
		t.Fatal("mutating a snapshot map must not affect the store")
	}
}

func TestCacheLookup(t *testing.T) {
	st := NewStore()

	st.Dispatch(UpdateClientesCache{Clientes: []clientes.Cliente{
		{ID: "cli-1", Cedula: "001", Nombres: "Ana"},
	}})

	c, ok := st.ClienteFromCache("cli-1")
	if !ok || c.Nombres != "Ana" {
		t.Fatalf("got %+v ok=%v", c, ok)
	}
	if _, ok := st.ClienteFromCache("cli-nope"); ok {
		t.Fatal("expected miss")
	}
}
