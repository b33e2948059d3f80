// Package toast provides transient notifications.
//
// Toasts are emitted as "selectdemo:toast" events through an Emitter. A
// live session forwards them over its WebSocket; a plain form post keeps
// them in a Recorder and shows them on the next page render. The client
// script listens for the event and draws the toast:
//
//	window.addEventListener("selectdemo:toast", (e) => {
//	    const { level, message, duration, position } = e.detail;
//	    showToast(level, message, duration, position);
//	});
//
// Server-side usage:
//
//	if res := form.Submit(&employee); res.OK() {
//	    toast.Success(e, "Submit successful",
//	        toast.WithDuration(2*time.Second),
//	        toast.AtPosition(toast.PositionMiddle))
//	}
package toast
